// Command hrv analyzes heart-rate recordings, either from a CSV export on
// the command line or as an HTTP service.
//
//	hrv analyze -input recording.csv -column pulse -timer-column ms_timer
//	hrv serve
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ubcspin/REMO1-dataProcessing/config"
	"github.com/ubcspin/REMO1-dataProcessing/heartbeat"
	"github.com/ubcspin/REMO1-dataProcessing/ingest"
	"github.com/ubcspin/REMO1-dataProcessing/logger"
	"github.com/ubcspin/REMO1-dataProcessing/observability"
	"github.com/ubcspin/REMO1-dataProcessing/server"
	"github.com/ubcspin/REMO1-dataProcessing/validation"
	"github.com/ubcspin/REMO1-dataProcessing/version"
)

const serviceName = "hrv"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "version":
		fmt.Printf("%s %s\n", serviceName, version.Short())
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [flags]

commands:
  analyze   run the pipeline over a CSV recording
  serve     run the HTTP analysis service
  version   print the version
`, serviceName)
}

func loadConfig(configFile string) (config.AppConfig, error) {
	var cfg config.AppConfig
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return cfg, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var (
		configFile  = fs.String("config", "", "config file path")
		input       = fs.String("input", "", "CSV recording to analyze")
		column      = fs.String("column", "", "signal column name (overrides config)")
		timerColumn = fs.String("timer-column", "", "millisecond timer column name")
		headerRow   = fs.Int("header-row", -1, "header row index (overrides config)")
		sampleRate  = fs.Float64("sample-rate", 0, "sampling rate in Hz (overrides timer estimate)")
		freq        = fs.Bool("freq", false, "compute frequency-domain measures")
		method      = fs.String("method", "", "spectral method: fft, periodogram or welch")
		output      = fs.String("output", "", "write measures JSON to file instead of stdout")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	log := logger.WithComponent("cli")

	if *input == "" {
		return fmt.Errorf("analyze: -input is required")
	}

	csvCfg := cfg.Ingest
	if *column != "" {
		csvCfg.SignalColumn = *column
	}
	if *timerColumn != "" {
		csvCfg.TimerColumn = *timerColumn
	}
	if *headerRow >= 0 {
		csvCfg.HeaderRow = *headerRow
	}

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := ingest.ReadCSV(f, csvCfg)
	if err != nil {
		return err
	}

	rate := *sampleRate
	if rate == 0 {
		if rec.Timer == nil {
			return fmt.Errorf("analyze: no timer column; -sample-rate is required")
		}
		rate, err = ingest.SampleRateFromTimer(rec.Timer)
		if err != nil {
			return err
		}
		log.Info("sample rate estimated from timer", logger.Fields("rate_hz", rate))
	}

	opts := cfg.Pipeline
	if *freq {
		opts.ComputeFrequencyDomain = true
	}
	if *method != "" {
		opts.SpectralMethod = *method
	}

	measures, err := heartbeat.Process(context.Background(), rec.Samples, rate, opts)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(measures, "", "  ")
	if err != nil {
		return err
	}
	if *output != "" {
		return os.WriteFile(*output, append(out, '\n'), 0o644)
	}
	fmt.Println(string(out))
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configFile := fs.String("config", "", "config file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metrics *observability.Metrics
	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
			SampleRate:     cfg.Observability.SampleRate,
		})
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())

		mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
			Interval:       cfg.Observability.MetricsInterval,
		})
		if err != nil {
			return err
		}
		defer mp.Shutdown(context.Background())

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return err
		}
	}

	pipelineCheck := observability.CheckFunc(func(context.Context) observability.Health {
		h := observability.Health{Name: "pipeline", Status: observability.HealthStatusUp}
		if err := validation.Validate(cfg.Pipeline); err != nil {
			h.Status = observability.HealthStatusDown
			h.Message = err.Error()
		}
		return h
	})

	srv := server.New(cfg.Server, logger.GetGlobalLogger())
	srv.ApplyDefaults(cfg.Name, version.Short(), pipelineCheck)

	handler := server.NewAnalysisHandler(cfg.Pipeline, metrics, logger.GetGlobalLogger())
	handler.Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("service ready", logger.Fields("addr", srv.Addr(), "version", version.Short()))

	<-ctx.Done()
	log.Info("shutdown signal received")
	return srv.Stop(context.Background())
}
