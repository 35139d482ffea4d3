package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"demodash/internal/dashboard"
	"demodash/internal/predict"
)

// newEmbedCmd prints the iframe markup the dashboard would render.
func newEmbedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "embed",
		Short:   "Print the iframe markup for the demo",
		Example: "  demodash embed --height 600 --border",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			dc := dashboard.FromConfig(cfg)
			dc.PredictEnabled = false
			dash, err := dashboard.New(dc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dash.DefaultFrame().HTML())
			return err
		},
	}
}

type predictFlags struct {
	prompt       string
	maxNewTokens string
	temperature  string
	topP         string
	file         string
}

// newPredictCmd performs one predict call from the command line and prints
// the interpreted result.
func newPredictCmd(opts *options) *cobra.Command {
	pf := &predictFlags{}
	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Send one prompt to the demo's predict endpoint",
		Example: "  demodash predict --prompt \"hello\" --max-new-tokens 64",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			dc := dashboard.FromConfig(cfg)
			dc.PredictEnabled = true
			dash, err := dashboard.New(dc, predict.WithLogger(newLogger(cfg.LogLevel, opts.logPretty)))
			if err != nil {
				return err
			}
			in := predict.RawInputs{Prompt: pf.prompt, MaxNewTokens: pf.maxNewTokens, Temperature: pf.temperature, TopP: pf.topP}
			if pf.file != "" {
				fh, err := os.Open(pf.file)
				if err != nil {
					return err
				}
				defer fh.Close()
				if in.File, err = predict.ReadFile(filepath.Base(pf.file), fh); err != nil {
					return err
				}
			}
			out, err := dash.Predict(cmd.Context(), in)
			if err != nil {
				var re *predict.RequestError
				if errors.As(err, &re) {
					return fmt.Errorf("%w\n%s", err, re.Hint())
				}
				return err
			}
			return printOutcome(cmd, out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&pf.prompt, "prompt", "p", "", "Prompt text")
	f.StringVar(&pf.maxNewTokens, "max-new-tokens", "256", "Maximum new tokens (1-1024)")
	f.StringVar(&pf.temperature, "temperature", "0.7", "Sampling temperature (0.01-2.0)")
	f.StringVar(&pf.topP, "top-p", "0.9", "Nucleus sampling top-p (0.01-1.0)")
	f.StringVar(&pf.file, "file", "", "Optional file sent ahead of the prompt")
	return cmd
}

func printOutcome(cmd *cobra.Command, out predict.Outcome) error {
	w := cmd.OutOrStdout()
	switch res := out.Result.(type) {
	case predict.Recognized:
		if !res.HasPrimary {
			_, err := fmt.Fprintln(w, predict.FormatJSON(res.Body))
			return err
		}
		_, err := fmt.Fprintln(w, predict.FormatValue(res.Primary))
		return err
	case predict.Unrecognized:
		_, err := fmt.Fprintln(w, predict.FormatJSON(res.Body))
		return err
	case predict.Undecodable:
		fmt.Fprintln(cmd.ErrOrStderr(), res.Notice())
		suffix := ""
		if res.Truncated {
			suffix = "…"
		}
		_, err := fmt.Fprintln(w, res.Preview+suffix)
		return err
	}
	return nil
}
