package batch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/curate-labs/imagemeta/internal/analysis"
	"github.com/curate-labs/imagemeta/internal/models"
)

// Processor drives batch items through the analysis lifecycle. Items are
// processed strictly one at a time; item N+1 does not start until item N has
// settled.
type Processor struct {
	Analyzer analysis.Analyzer
	Config   analysis.Config
}

// ProcessAll snapshots the pending items at call time and drains the queue
// sequentially. Items added to the batch mid-run are not picked up. A failed
// item is recorded on the item itself and never stops the run. Returns the
// number of items that reached done.
func (p *Processor) ProcessAll(ctx context.Context, b *Batch) (int, error) {
	if p.Analyzer == nil {
		return 0, errors.New("no analyzer configured")
	}

	queue := make([]string, 0, b.Len())
	for _, item := range b.Items() {
		if item.Status == models.StatusPending {
			queue = append(queue, item.ID)
		}
	}

	slog.Info("Processing batch", "batch", b.ID, "queued", len(queue))

	done := 0
	for _, id := range queue {
		if err := p.ProcessSingle(ctx, b, id); err != nil {
			continue
		}
		done++
	}

	slog.Info("Batch processed", "batch", b.ID, "done", done, "failed", len(queue)-done)
	return done, nil
}

// ProcessSingle runs the analysis lifecycle for one item. Unknown ids are a
// logged no-op, as are items already processing or done — re-processing a
// done item would discard user edits, so it is refused rather than inferred.
// An analysis failure is recorded on the item and also returned.
func (p *Processor) ProcessSingle(ctx context.Context, b *Batch, id string) error {
	if p.Analyzer == nil {
		return errors.New("no analyzer configured")
	}

	item, exists := b.Get(id)
	if !exists {
		slog.Warn("Skipping unknown item", "batch", b.ID, "item", id)
		return nil
	}
	if item.Status == models.StatusDone || item.Status == models.StatusProcessing {
		slog.Warn("Item not eligible for processing", "item", id, "status", item.Status)
		return nil
	}

	item.Status = models.StatusProcessing
	item.Error = ""

	result, err := p.Analyzer.Analyze(ctx, item.Data, item.MediaType, p.Config)
	if err != nil {
		item.Status = models.StatusError
		item.Error = err.Error()
		slog.Warn("Item analysis failed", "item", id, "file", item.OriginalFileName, "error", err)
		return err
	}

	item.Analysis = result
	item.Status = models.StatusDone
	slog.Info("Item analyzed", "item", id, "file", item.OriginalFileName, "name", result.DescriptiveName)
	return nil
}
