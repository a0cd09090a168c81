package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"DotNFT/internal/account"
	"DotNFT/internal/balance"
	"DotNFT/pkg/logx"
)

// showAccount prints the address and balances. Failures are shown, never fatal.
func (r *Runner) showAccount(ctx context.Context) {
	_, _ = fmt.Fprintln(r.out, r.msg.AccountFetching)
	if err := r.printAccount(ctx); err != nil {
		logx.S().Warnw("account info failed", "err", err)
		_, _ = color.New(color.FgRed).Fprintf(r.out, r.msg.AccountFailed, err)
	}
}

func (r *Runner) printAccount(ctx context.Context) error {
	net, err := r.network()
	if err != nil {
		return err
	}
	acct, err := account.Derive(r.user.Mnemonic, net.SS58Format)
	if err != nil {
		return err
	}

	cl, err := r.dial(ctx, net)
	if err != nil {
		return err
	}
	defer cl.Close()

	info, err := cl.ChainInfo(ctx)
	if err != nil {
		return err
	}
	bal := balance.Empty(info.Name, info.Symbol, info.Decimals)
	data, exists, err := cl.QueryAccount(ctx, acct.PublicKey())
	if err != nil {
		return err
	}
	if exists {
		bal.Free, bal.Reserved, bal.Frozen = data.Free, data.Reserved, data.Frozen
	}

	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dot := func(c color.Attribute) string { return color.New(c).Sprint("●") }

	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, bold(r.msg.AccountTitle))
	_, _ = fmt.Fprintln(r.out, bold(r.msg.AccountAddress), cyan(acct.Address()))
	_, _ = fmt.Fprintln(r.out, bold(r.msg.AccountEVM), cyan(acct.EVMAddress()))
	_, _ = fmt.Fprintln(r.out, bold(r.msg.AccountChain), color.New(color.FgBlue).Sprint(bal.ChainName))
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, bold(r.msg.BalanceTitle))
	_, _ = fmt.Fprintln(r.out, " ", dot(color.FgGreen), r.msg.BalanceFree, bold(bal.Display(bal.Free)))
	_, _ = fmt.Fprintln(r.out, " ", dot(color.FgYellow), r.msg.BalanceReserved, bold(bal.Display(bal.Reserved)))
	_, _ = fmt.Fprintln(r.out, " ", dot(color.FgBlue), r.msg.BalanceFrozen, bold(bal.Display(bal.Frozen)))
	_, _ = fmt.Fprintln(r.out, " ", dot(color.FgMagenta), r.msg.BalanceTotal, bold(bal.Display(bal.Total())))
	if !exists {
		_, _ = fmt.Fprintln(r.out, color.New(color.FgYellow).Sprint(r.msg.AccountEmpty))
	}

	logx.S().Infow("account info", "address", acct.Address(), "chain", bal.ChainName, "free", balance.Format(bal.Free, bal.Decimals))
	return nil
}
