package feed

import (
	"fmt"

	"github.com/rs/zerolog"
)

// NewPipeline creates the run orchestrator that ties the cache, filter,
// aggregator and artifact writer together.
func NewPipeline(logger zerolog.Logger, resolver ContentResolver, filter RecordFilter, aggregator Aggregator, artifact ArtifactWriter) *Pipeline {
	return &Pipeline{
		logger:     logger,
		resolver:   resolver,
		filter:     filter,
		aggregator: aggregator,
		artifact:   artifact,
	}
}

// Pipeline performs one full run: resolve the primary feed, filter it into the
// output artifact, then optionally append aggregated ASN blocks.
type Pipeline struct {
	logger     zerolog.Logger
	resolver   ContentResolver
	filter     RecordFilter
	aggregator Aggregator
	artifact   ArtifactWriter
}

// Run executes the pipeline for the given country codes and ASN targets.
// Errors returned here are fatal for the run; per-ASN-target failures are
// handled inside the aggregator and only logged.
func (p *Pipeline) Run(countryCodes []string, asnTargets []string) error {
	content, source, err := p.resolver.ResolveContent()
	if err != nil {
		return err
	}

	p.logger.Info().Msgf("Processing %v feed content for country codes %v", source, countryCodes)

	lines, summary := p.filter.Filter(content, countryCodes)

	if err = p.artifact.Replace(lines); err != nil {
		return fmt.Errorf("error while writing filtered output: %v", err)
	}

	// Summaries are rendered by walking the caller-supplied code list, so the
	// report order is deterministic and zero-match codes are included.
	for _, code := range countryCodes {
		p.logger.Info().Msgf("%v CIDR blocks: %v", code, summary[code])
	}
	p.logger.Info().Msgf("Total matching blocks: %v", summary.Total())

	if len(asnTargets) == 0 {
		return nil
	}

	asnLines, counts := p.aggregator.Aggregate(asnTargets)
	if len(asnLines) == 0 {
		return nil
	}

	if err = p.artifact.Append(asnLines); err != nil {
		return fmt.Errorf("error while appending ASN output: %v", err)
	}

	total := 0
	for _, target := range asnTargets {
		p.logger.Info().Msgf("AS%v CIDR blocks: %v", target, counts[target])
		total += counts[target]
	}
	p.logger.Info().Msgf("Total ASN blocks: %v", total)

	return nil
}
