package main

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"geofeed/asn"
	"geofeed/cidrfilter"
	"geofeed/config"
	"geofeed/feed"
	"geofeed/feedcache"
	"geofeed/integrity"
	"geofeed/output"
	"geofeed/transport"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Dependency injection composition root
func main() {
	logLevel := flag.String("loglevel", "info", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	logFile := flag.String("logfile", "", "if set, also write logs to this file, with rotation")
	configPath := flag.String("config", "geofeed.yaml", "path to the optional YAML configuration file")
	var countryCodes stringList
	flag.Var(&countryCodes, "country", "country code to filter (can be specified multiple times)")
	var asnTargets stringList
	flag.Var(&asnTargets, "asn", "ASN number to include (can be specified multiple times)")
	flag.Parse()

	loglevel, _ := zerolog.ParseLevel(*logLevel)
	var out io.Writer = os.Stderr
	if *logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, rotated)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).Level(loglevel).With().Timestamp().Logger()

	if len(countryCodes) == 0 {
		logger.Fatal().Msg("At least one -country flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while loading configuration")
	}

	fs := &feed.FileSystemImpl{}
	fetcher := transport.NewHTTPFetcher(logger)
	verifier := integrity.NewSHA256Verifier(logger, fetcher, cfg.DigestURL)
	resolver := feedcache.NewFeedCache(logger, fs, fetcher, verifier, cfg.FeedURL, cfg.SnapshotPath)
	filter := cidrfilter.NewRecordFilter(logger)
	aggregator := asn.NewAggregator(logger, fetcher, cfg.ASNBaseURL)
	artifact := output.NewArtifactWriter(fs, cfg.OutputPath)

	pipeline := feed.NewPipeline(logger, resolver, filter, aggregator, artifact)
	if err := pipeline.Run(feed.NormalizeCountryCodes(countryCodes), asnTargets); err != nil {
		logger.Fatal().Err(err).Msg("Error while running the feed pipeline")
	}
}

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
