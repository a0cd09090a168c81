package mint

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"DotNFT/internal/chain"
	"DotNFT/internal/storage"
	"DotNFT/pkg/logx"
)

var (
	ErrInvalidRequest = errors.New("invalid mint request")
	ErrNoCollection   = errors.New("collection id is not known")
	ErrNoItems        = errors.New("no item images to mint")
	ErrIDOverflow     = errors.New("item ids exceed the u32 range")
	ErrNothingMinted  = errors.New("no item was uploaded, nothing to mint")
)

type Uploader interface {
	UploadFile(ctx context.Context, path string) (storage.UploadResult, error)
	UploadMetadata(ctx context.Context, md storage.Metadata) (storage.UploadResult, error)
}

type Submitter interface {
	Submit(ctx context.Context, signer chain.Signer, calls ...chain.Call) (*chain.Outcome, error)
}

// Signer is the derived account: it signs, pays, administers the collection
// and receives the items.
type Signer interface {
	chain.Signer
	PublicKey() []byte
}

// Orchestrator runs the minting pipeline against its collaborators.
type Orchestrator struct {
	Uploader  Uploader
	Submitter Submitter
	Clock     func() time.Time
	Observer  Observer

	// CollectionRule picks the event carrying the new collection id.
	// chain.CollectionCreatedRule when nil.
	CollectionRule func(admin []byte) chain.EventRule

	mu sync.Mutex
}

// Run creates a collection and mints every item of items into it.
// The report is returned together with any error so partial progress stays visible.
func (o *Orchestrator) Run(ctx context.Context, signer Signer, col CollectionSpec, items ItemsSpec) (*Report, error) {
	rep := &Report{
		RunID:     uuid.NewString(),
		Admin:     signer.Address(),
		StartedAt: o.now(),
	}
	defer func() { rep.FinishedAt = o.now() }()

	log := logx.With("mint").With("run", rep.RunID)
	log.Infow("minting started", "admin", rep.Admin, "collection", col.Name)
	o.notify(Progress{Stage: StageStart, Item: -1})
	o.notify(Progress{Stage: StageAccountDerived, Item: -1, Name: rep.Admin})

	if err := col.Validate(); err != nil {
		return rep, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if err := items.Validate(); err != nil {
		return rep, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	paths, err := resolveItems(items)
	if err != nil {
		return rep, err
	}
	if err := CheckIDRange(items.StartNumber, len(paths)); err != nil {
		return rep, err
	}

	if err := o.createCollection(ctx, signer, col, rep); err != nil {
		log.Errorw("collection failed", "err", err)
		return rep, err
	}
	log.Infow("collection created", "id", *rep.CollectionID, "metadata", rep.CollectionMetadataURI)

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	o.uploadItems(ctx, items, paths, rep)
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	log.Infow("item uploads finished", "uploaded", rep.Uploaded, "failed", rep.Failed)

	if rep.Uploaded == 0 {
		o.notify(Progress{Stage: StageDone, Item: -1})
		return rep, ErrNothingMinted
	}

	if err := o.mintItems(ctx, signer, rep); err != nil {
		log.Errorw("batch mint failed", "items", rep.Uploaded, "err", err)
		return rep, err
	}
	log.Infow("minting finished",
		"collection", *rep.CollectionID,
		"minted", rep.Minted,
		"failed", rep.Failed,
		"elapsed", humanDuration(o.now().Sub(rep.StartedAt)),
	)
	o.notify(Progress{Stage: StageDone, Item: -1})
	return rep, nil
}

func (o *Orchestrator) createCollection(ctx context.Context, signer Signer, col CollectionSpec, rep *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := o.Uploader.UploadFile(ctx, col.ImagePath)
	if err != nil {
		return errors.Wrap(err, "upload collection image")
	}
	rep.CollectionImage = img
	o.notify(Progress{Stage: StageCollectionImageUploaded, Item: -1, Name: col.Name})

	if err := ctx.Err(); err != nil {
		return err
	}
	md, err := o.Uploader.UploadMetadata(ctx, storage.Metadata{
		Name:        col.Name,
		Description: col.Description,
		Image:       img.URI,
	})
	if err != nil {
		return errors.Wrap(err, "upload collection metadata")
	}
	rep.CollectionMetadataURI = md.URI
	o.notify(Progress{Stage: StageCollectionMetadataUploaded, Item: -1, Name: col.Name})

	if err := ctx.Err(); err != nil {
		return err
	}
	admin := signer.PublicKey()
	out, err := o.Submitter.Submit(ctx, signer, chain.CreateCollection(admin))
	if err != nil {
		return errors.Wrap(err, "create collection")
	}
	rep.CollectionOutcome = out

	id, err := chain.ExtractUint32(out.Events, o.collectionRule(admin))
	if err != nil {
		return errors.Wrap(err, "read collection id")
	}
	rep.CollectionID = &id

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := o.Submitter.Submit(ctx, signer, chain.SetCollectionMetadata(id, md.URI)); err != nil {
		return errors.Wrapf(err, "set metadata of collection %d", id)
	}
	o.notify(Progress{Stage: StageCollectionCreated, Item: -1, Name: col.Name})
	return nil
}

// uploadItems never fails as a whole: each item records its own outcome.
func (o *Orchestrator) uploadItems(ctx context.Context, spec ItemsSpec, paths []string, rep *Report) {
	rep.Items = make([]ItemResult, len(paths))
	for i, p := range paths {
		id := spec.StartNumber + uint32(i)
		rep.Items[i] = ItemResult{Index: i, ItemID: id, Name: spec.ItemName(id), ImagePath: p}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spec.concurrency())
	for i := range rep.Items {
		item := &rep.Items[i]
		g.Go(func() error {
			o.uploadItem(gctx, spec.Description, item)
			return nil
		})
	}
	_ = g.Wait()

	for _, it := range rep.Items {
		if it.Status == ItemUploaded {
			rep.Uploaded++
		} else {
			rep.Failed++
		}
	}
}

func (o *Orchestrator) uploadItem(ctx context.Context, description string, item *ItemResult) {
	fail := func(err error) {
		item.Status = ItemFailed
		item.Error = err.Error()
		logx.With("mint").Warnw("item skipped", "item", item.ItemID, "path", item.ImagePath, "err", err)
		o.notify(Progress{Stage: StageItemImageUploaded, Item: item.Index, Name: item.Name, Err: err})
	}

	if err := ctx.Err(); err != nil {
		fail(err)
		return
	}
	img, err := o.Uploader.UploadFile(ctx, item.ImagePath)
	if err != nil {
		fail(errors.Wrap(err, "upload image"))
		return
	}
	item.Image = img
	o.notify(Progress{Stage: StageItemImageUploaded, Item: item.Index, Name: item.Name})

	md, err := o.Uploader.UploadMetadata(ctx, storage.Metadata{
		Name:        item.Name,
		Description: description,
		Image:       img.URI,
	})
	if err != nil {
		fail(errors.Wrap(err, "upload metadata"))
		return
	}
	item.Metadata = md
	item.Status = ItemUploaded
	o.notify(Progress{Stage: StageItemMetadataUploaded, Item: item.Index, Name: item.Name})
}

// mintItems submits one atomic batch for every uploaded item.
func (o *Orchestrator) mintItems(ctx context.Context, signer Signer, rep *Report) error {
	calls, err := BatchCalls(rep.CollectionID, signer.PublicKey(), rep.Items)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := o.Submitter.Submit(ctx, signer, calls...)
	if err != nil {
		rep.BatchOutcome = out
		rep.Minted = 0
		// sent but abandoned before inclusion: the chain may still apply it
		status := ItemFailed
		if out != nil && !out.Included() && ctx.Err() != nil {
			status = ItemPending
		}
		for i := range rep.Items {
			if rep.Items[i].Status != ItemUploaded {
				continue
			}
			rep.Items[i].Status = status
			rep.Items[i].Error = err.Error()
			if out != nil {
				rep.Items[i].ExtrinsicHash = out.ExtrinsicHash
			}
		}
		if status == ItemPending {
			rep.Pending = rep.Uploaded
		} else {
			rep.Failed += rep.Uploaded
		}
		return errors.Wrapf(err, "mint %d items", rep.Uploaded)
	}

	rep.BatchOutcome = out
	for i := range rep.Items {
		if rep.Items[i].Status == ItemUploaded {
			rep.Items[i].Status = ItemMinted
			rep.Items[i].ExtrinsicHash = out.ExtrinsicHash
			rep.Minted++
		}
	}
	o.notify(Progress{Stage: StageItemsBatchSubmitted, Item: -1})
	return nil
}

// BatchCalls builds the (mint, set_metadata) pairs of the uploaded items in item-id order.
func BatchCalls(collection *uint32, owner []byte, items []ItemResult) ([]chain.Call, error) {
	if collection == nil {
		return nil, ErrNoCollection
	}
	calls := make([]chain.Call, 0, 2*len(items))
	for _, it := range items {
		if it.Status != ItemUploaded {
			continue
		}
		calls = append(calls,
			chain.Mint(*collection, it.ItemID, owner),
			chain.SetMetadata(*collection, it.ItemID, it.Metadata.URI),
		)
	}
	return calls, nil
}

// CheckIDRange rejects a run whose last item id would not fit in a u32.
func CheckIDRange(start uint32, count int) error {
	if count <= 0 {
		return nil
	}
	if uint64(start)+uint64(count)-1 > math.MaxUint32 {
		return errors.Wrapf(ErrIDOverflow, "start %d with %d items", start, count)
	}
	return nil
}

func resolveItems(spec ItemsSpec) ([]string, error) {
	var paths []string
	if spec.Folder != "" {
		found, err := storage.ImagesInFolder(spec.Folder)
		if err != nil {
			return nil, err
		}
		paths = found
	} else {
		paths = append(paths, spec.Paths...)
	}
	if len(paths) == 0 {
		return nil, ErrNoItems
	}
	return paths, nil
}

func (o *Orchestrator) collectionRule(admin []byte) chain.EventRule {
	if o.CollectionRule != nil {
		return o.CollectionRule(admin)
	}
	return chain.CollectionCreatedRule(admin)
}

func (o *Orchestrator) notify(p Progress) {
	if o.Observer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Observer(p)
}

func (o *Orchestrator) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm%02ds", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}
