package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"DotNFT/internal/account"
	"DotNFT/internal/chain"
	"DotNFT/internal/mint"
	"DotNFT/internal/storage"
	"DotNFT/pkg/appcfg"
	"DotNFT/pkg/config"
	"DotNFT/pkg/i18n"
	"DotNFT/pkg/logx"
)

// chainClient is the part of *chain.Conn the menu needs.
type chainClient interface {
	mint.Submitter
	ChainInfo(ctx context.Context) (chain.ChainInfo, error)
	QueryAccount(ctx context.Context, pubKey []byte) (*chain.AccountData, bool, error)
	Network() chain.Network
	Close()
}

type Runner struct {
	p       *Prompter
	out     io.Writer
	msg     i18n.Messages
	v       validators
	app     *appcfg.Config
	cfgPath string
	user    *config.UserConfig

	dial     func(ctx context.Context, n chain.Network) (chainClient, error)
	newStore func(u *config.UserConfig) (storage.ObjectStore, error)
}

func NewRunner(app *appcfg.Config, cfgPath string) *Runner {
	msg := i18n.Get(app.Language)
	return &Runner{
		p:        NewPrompter(os.Stdin, os.Stdout),
		out:      os.Stdout,
		msg:      msg,
		v:        validators{msg: msg},
		app:      app,
		cfgPath:  cfgPath,
		dial:     dialConn,
		newStore: filebaseStore,
	}
}

func (r *Runner) Messages() i18n.Messages { return r.msg }

func dialConn(ctx context.Context, n chain.Network) (chainClient, error) {
	conn, err := chain.Dial(ctx, n)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func filebaseStore(u *config.UserConfig) (storage.ObjectStore, error) {
	return storage.NewFilebaseStore(storage.FilebaseConfig{
		Key:    u.FilebaseKey,
		Secret: u.FilebaseSecret,
		Bucket: u.FilebaseBucket,
	})
}

// Run drives setup and the main menu until the user exits.
// ErrCancelled means the user bailed out of a prompt; any other error is a setup failure.
func (r *Runner) Run(ctx context.Context) error {
	_, _ = color.New(color.Bold).Fprintln(r.out, r.msg.Welcome)

	cfg, err := config.Load(r.cfgPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		_, _ = fmt.Fprintln(r.out, r.msg.SetupIntro)
		if cfg, err = r.configure(ctx); err != nil {
			return err
		}
		_, _ = color.New(color.FgGreen).Fprintf(r.out, r.msg.SetupDone, r.cfgPath)
	} else {
		again, err := r.p.Confirm(ctx, r.msg.Reconfigure, false)
		if err != nil {
			return err
		}
		if again {
			if cfg, err = r.configure(ctx); err != nil {
				return err
			}
			_, _ = color.New(color.FgGreen).Fprintf(r.out, r.msg.ConfigUpdated, r.cfgPath)
		}
	}
	r.user = cfg
	logx.S().Infow("config ready", "path", r.cfgPath, "chain", cfg.Chain, "bucket", cfg.FilebaseBucket)

	r.showAccount(ctx)
	return r.menu(ctx)
}

func (r *Runner) menu(ctx context.Context) error {
	for {
		_, _ = fmt.Fprintln(r.out)
		_, _ = fmt.Fprintln(r.out, r.msg.MenuTitle)
		for _, item := range []string{r.msg.MenuMint, r.msg.MenuAccount, r.msg.MenuConfig, r.msg.MenuExit} {
			_, _ = fmt.Fprintln(r.out, item)
		}
		choice, err := r.p.Line(ctx, "> ")
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "1":
			if err := r.mintWorkflow(ctx); err != nil {
				if errors.Is(err, ErrCancelled) {
					return err
				}
				logx.S().Errorw("minting failed", "err", err)
				_, _ = color.New(color.FgRed).Fprintf(r.out, r.msg.MintFailed, err)
			}
		case "2":
			r.showAccount(ctx)
		case "3":
			cfg, err := r.configure(ctx)
			if err != nil {
				return err
			}
			r.user = cfg
			_, _ = color.New(color.FgGreen).Fprintf(r.out, r.msg.ConfigUpdated, r.cfgPath)
		case "0", "q", "exit":
			_, _ = color.New(color.FgGreen).Fprintln(r.out, r.msg.Goodbye)
			return nil
		default:
			_, _ = fmt.Fprintln(r.out, r.msg.UnknownCommand, choice)
		}
	}
}

// configure collects a fresh user config and saves it.
func (r *Runner) configure(ctx context.Context) (*config.UserConfig, error) {
	mn, err := r.p.Secret(ctx, r.msg.AskMnemonic, r.v.mnemonic)
	if err != nil {
		return nil, err
	}
	key, err := r.p.Ask(ctx, r.msg.AskFilebaseKey, "", r.v.required)
	if err != nil {
		return nil, err
	}
	secret, err := r.p.Secret(ctx, r.msg.AskFilebaseSecret, r.v.required)
	if err != nil {
		return nil, err
	}
	bucket, err := r.p.Ask(ctx, r.msg.AskBucket, "", r.v.bucket)
	if err != nil {
		return nil, err
	}

	ids := chain.NetworkIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		n, _ := chain.Lookup(id)
		names[i] = n.Name
	}
	picked, err := r.p.Choose(ctx, r.msg.AskChain, names, 0)
	if err != nil {
		return nil, err
	}

	cfg := &config.UserConfig{
		Mnemonic:       account.Normalize(mn),
		FilebaseKey:    key,
		FilebaseSecret: secret,
		FilebaseBucket: bucket,
		Chain:          config.Chain(ids[picked]),
	}
	if err := config.Save(r.cfgPath, cfg); err != nil {
		return nil, err
	}
	logx.S().Infow("config saved", "path", r.cfgPath, "mnemonic", account.Mask(cfg.Mnemonic))
	return cfg, nil
}

// network is the configured chain with app.yaml overrides applied.
func (r *Runner) network() (chain.Network, error) {
	n, err := chain.Lookup(string(r.user.Chain))
	if err != nil {
		return chain.Network{}, err
	}
	o := r.app.Networks[n.ID]
	return n.WithOverrides(o.RPCURL, o.ExplorerURL), nil
}

// WithInterrupt cancels the context on SIGINT/SIGTERM.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
