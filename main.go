package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"q.log/tableau-simplex/config"
	"q.log/tableau-simplex/instance"
	"q.log/tableau-simplex/model"
	"q.log/tableau-simplex/report"
	"q.log/tableau-simplex/simplex"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Fatal("simplex failed")
	}
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "simplex [file]",
		Short: "Solve max c'x s.t. Ax <= b, x >= 0 with the two-phase tableau Simplex method",
		Long: `Reads a linear program and prints its status, optimal value, primal
solution and certificate. Without a file the program is read from stdin in the
text layout: "R V", the V objective coefficients, then R rows of V
coefficients followed by the right-hand side. MPS files are read with
--input-format=mps.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(cfg.LogLevel)

			lp, err := readModel(cfg, args, in, log)
			if err != nil {
				return err
			}
			log.Debugf("model read\n%v", lp)

			var r *report.Report
			res, err := simplex.Solve(lp,
				simplex.WithEpsilon(cfg.Epsilon),
				simplex.WithMaxIterations(cfg.MaxIterations),
				simplex.WithLogger(log),
			)
			if err != nil {
				if r, err = report.FromError(err); err != nil {
					return err
				}
				log.WithField("status", r.Status).Info("solve finished")
			} else {
				r = report.FromResult(res)
				log.WithFields(logrus.Fields{
					"value":      res.Value,
					"iterations": res.Iterations,
				}).Info("solve finished")
			}
			return r.Write(out, cfg.Output)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file")
	config.AddFlags(cmd.Flags())
	return cmd
}

func readModel(cfg *config.Config, args []string, in io.Reader, log logrus.FieldLogger) (*model.Model, error) {
	switch cfg.InputFormat {
	case config.InputMPS:
		if len(args) == 0 {
			return nil, errors.New("mps input needs a file argument")
		}
		return instance.NewReader(args[0], log).ConstructModelFromFile()
	default:
		if len(args) == 0 {
			return instance.ReadText(in)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		return instance.ReadText(f)
	}
}
