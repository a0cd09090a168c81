package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"DotNFT/internal/account"
	"DotNFT/internal/chain"
	"DotNFT/internal/mint"
	"DotNFT/internal/receipt"
	"DotNFT/internal/storage"
	"DotNFT/pkg/logx"
)

func (r *Runner) askCollection(ctx context.Context) (mint.CollectionSpec, error) {
	var (
		c   mint.CollectionSpec
		err error
	)
	_, _ = color.New(color.Bold).Fprintln(r.out, r.msg.CollectionSetup)
	if c.Name, err = r.p.Ask(ctx, r.msg.AskCollectionName, "", r.v.name); err != nil {
		return c, err
	}
	if c.Description, err = r.p.Ask(ctx, r.msg.AskCollectionDesc, "", r.v.description); err != nil {
		return c, err
	}
	if c.ImagePath, err = r.p.Ask(ctx, r.msg.AskCollectionImage, "", r.v.imageFile); err != nil {
		return c, err
	}
	return c, nil
}

func (r *Runner) askItems(ctx context.Context) (mint.ItemsSpec, error) {
	var (
		s   mint.ItemsSpec
		err error
	)
	_, _ = color.New(color.Bold).Fprintln(r.out, r.msg.MintingSetup)
	if s.BaseName, err = r.p.Ask(ctx, r.msg.AskItemBase, "", r.v.name); err != nil {
		return s, err
	}
	if s.Numbered, err = r.p.Confirm(ctx, r.msg.AskNumbered, true); err != nil {
		return s, err
	}
	if s.Description, err = r.p.Ask(ctx, r.msg.AskItemDesc, "", r.v.description); err != nil {
		return s, err
	}
	if s.Folder, err = r.p.Ask(ctx, r.msg.AskImagesFolder, "", r.v.imageFolder); err != nil {
		return s, err
	}
	images, err := storage.ImagesInFolder(s.Folder)
	if err != nil {
		return s, err
	}
	start, err := r.p.Ask(ctx, r.msg.AskStartNumber, "1", r.v.startNumber(len(images)))
	if err != nil {
		return s, err
	}
	n, _ := strconv.ParseUint(strings.TrimSpace(start), 10, 32)
	s.StartNumber = uint32(n)
	s.UploadConcurrency = r.app.UploadConcurrency
	return s, nil
}

// mintWorkflow asks for the collection and items, then runs the orchestrator.
// Every run gets its own log directory with app.log and the receipts.
func (r *Runner) mintWorkflow(ctx context.Context) error {
	col, err := r.askCollection(ctx)
	if err != nil {
		return err
	}
	items, err := r.askItems(ctx)
	if err != nil {
		return err
	}

	images, err := storage.ImagesInFolder(items.Folder)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(r.out, r.msg.FoundImages, len(images))
	ok, err := r.p.Confirm(ctx, fmt.Sprintf(r.msg.ProceedMint, len(images)), true)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = color.New(color.FgYellow).Fprintln(r.out, r.msg.MintCancelled)
		return nil
	}

	net, err := r.network()
	if err != nil {
		return err
	}
	acct, err := account.Derive(r.user.Mnemonic, net.SS58Format)
	if err != nil {
		return err
	}

	dir, err := receipt.MakeRunDir(r.app.LogsBase, "mint", time.Now())
	if err != nil {
		return err
	}
	if err := logx.Init(logx.Config{
		Level:                r.app.LogLevel,
		FilePath:             filepath.Join(dir, "app.log"),
		HideSecretsInConsole: r.app.HideSecretsInConsole,
	}); err != nil {
		return fmt.Errorf("logx init for mint failed: %w", err)
	}
	defer r.consoleLogging()
	_, _ = fmt.Fprintf(r.out, r.msg.MintStarted, filepath.Join(dir, "app.log"))

	store, err := r.newStore(r.user)
	if err != nil {
		return err
	}
	cl, err := r.dial(ctx, net)
	if err != nil {
		return err
	}
	defer cl.Close()

	o := &mint.Orchestrator{
		Uploader:  storage.NewUploader(store, storage.WithGateway(r.app.GatewayURL)),
		Submitter: cl,
		Observer:  r.progress,
	}
	rep, runErr := o.Run(ctx, acct, col, items)

	if err := receipt.NewWriter(dir).Record(rep); err != nil {
		logx.S().Errorw("receipt write failed", "dir", dir, "err", err)
	}
	r.summary(col, rep, net, dir)

	if errors.Is(runErr, context.Canceled) {
		return ErrCancelled
	}
	return runErr
}

func (r *Runner) consoleLogging() {
	if err := logx.Init(logx.Config{
		Level:                r.app.LogLevel,
		ConsoleOnly:          true,
		HideSecretsInConsole: r.app.HideSecretsInConsole,
	}); err != nil {
		_, _ = fmt.Fprintln(r.out, "log init:", err)
	}
}

func (r *Runner) progress(p mint.Progress) {
	ok := color.New(color.FgGreen).SprintFunc()
	switch p.Stage {
	case mint.StageCollectionImageUploaded:
		_, _ = fmt.Fprintln(r.out, ok("✓"), r.msg.StageCollectionImage)
	case mint.StageCollectionMetadataUploaded:
		_, _ = fmt.Fprintln(r.out, ok("✓"), r.msg.StageCollectionMetadata)
	case mint.StageCollectionCreated:
		_, _ = fmt.Fprintln(r.out, ok("✓"), r.msg.StageCollectionCreated)
	case mint.StageItemImageUploaded:
		if p.Err != nil {
			_, _ = color.New(color.FgRed).Fprintf(r.out, "✗ "+r.msg.StageItemFailed, p.Name, p.Err)
			return
		}
		_, _ = fmt.Fprintf(r.out, "  "+r.msg.StageItemImage, p.Name)
	case mint.StageItemMetadataUploaded:
		_, _ = fmt.Fprintf(r.out, "  "+r.msg.StageItemMetadata, p.Name)
	case mint.StageItemsBatchSubmitted:
		_, _ = fmt.Fprintln(r.out, ok("✓"), r.msg.StageBatch)
	}
}

func (r *Runner) summary(col mint.CollectionSpec, rep *mint.Report, net chain.Network, dir string) {
	if rep == nil {
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, bold(r.msg.MintSummaryTitle))
	_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryMinted, color.New(color.FgGreen).Sprint(rep.Minted))
	if rep.Failed > 0 {
		_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryFailed, color.New(color.FgRed).Sprint(rep.Failed))
	}
	if rep.Pending > 0 {
		_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryPending, color.New(color.FgYellow).Sprint(rep.Pending))
	}
	name := col.Name
	if rep.CollectionID != nil {
		name = fmt.Sprintf("%s (#%d)", col.Name, *rep.CollectionID)
	}
	_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryCollection, color.New(color.FgCyan).Sprint(name))
	_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryTotal, bold(len(rep.Items)))
	if rep.CollectionID != nil {
		_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryExplorer, net.ItemsURL(*rep.CollectionID))
	}
	if rep.BatchOutcome != nil && rep.BatchOutcome.ExtrinsicHash != "" {
		_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryExtrinsic, net.ExtrinsicURL(rep.BatchOutcome.ExtrinsicHash))
	}
	if !rep.FinishedAt.IsZero() {
		_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryElapsed, rep.Elapsed().Round(time.Second))
	}
	_, _ = fmt.Fprintln(r.out, " ", r.msg.MintSummaryReceipts, dir)
}
