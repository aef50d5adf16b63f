package dashboard

import (
	"context"
	"fmt"
	"log"

	"NobelDashboard/internal/metrics"
	"NobelDashboard/internal/models"
	"NobelDashboard/internal/storage"
)

// Outcome describes what one event did to the store.
type Outcome struct {
	Kind     string `json:"kind"`
	Inserted bool   `json:"inserted,omitempty"`
	Matched  int64  `json:"matched,omitempty"`
	Deleted  int64  `json:"deleted,omitempty"`
}

type MutationHandler struct {
	store   storage.Store
	logger  *log.Logger
	metrics *metrics.Recorder
}

func NewMutationHandler(store storage.Store, logger *log.Logger, m *metrics.Recorder) *MutationHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &MutationHandler{store: store, logger: logger, metrics: m}
}

// Apply is the single reducer for dashboard events. Zero matches on edit or
// delete are logged and reported in the Outcome; only store failures are
// returned as errors.
func (h *MutationHandler) Apply(ctx context.Context, ev Event) (Outcome, error) {
	out := Outcome{Kind: ev.Kind.String()}
	year, _ := ev.Form.year()
	key := models.AwardKey{Year: year, Category: ev.Form.Category}

	switch ev.Kind {
	case ControlChanged:
		return out, nil

	case AddRequested:
		record := models.NewAward(year, key.Category, ev.Form.Gender, ev.Form.Country)
		if err := h.store.Insert(ctx, record); err != nil {
			h.metrics.ObserveMutation(out.Kind, "error")
			return out, fmt.Errorf("MutationHandler.Apply(): %w", err)
		}
		h.metrics.ObserveMutation(out.Kind, "inserted")
		h.logger.Printf("MutationHandler.Apply(): inserted %d %s", year, key.Category)
		out.Inserted = true
		return out, nil

	case EditRequested:
		patch := patchFromForm(ev.Form)
		if patch.IsEmpty() {
			return out, nil
		}
		matched, err := h.store.UpdateOne(ctx, key, patch)
		if err != nil {
			h.metrics.ObserveMutation(out.Kind, "error")
			return out, fmt.Errorf("MutationHandler.Apply(): %w", err)
		}
		out.Matched = matched
		if matched == 0 {
			h.metrics.ObserveMutation(out.Kind, "no_match")
			h.logger.Printf("No records found to edit. (year=%d, category=%s)", year, key.Category)
			return out, nil
		}
		h.metrics.ObserveMutation(out.Kind, "updated")
		return out, nil

	case DeleteRequested:
		deleted, err := h.store.DeleteOne(ctx, key)
		if err != nil {
			h.metrics.ObserveMutation(out.Kind, "error")
			return out, fmt.Errorf("MutationHandler.Apply(): %w", err)
		}
		out.Deleted = deleted
		if deleted == 0 {
			h.metrics.ObserveMutation(out.Kind, "no_match")
			h.logger.Printf("No records found to delete. (year=%d, category=%s)", year, key.Category)
			return out, nil
		}
		h.metrics.ObserveMutation(out.Kind, "deleted")
		return out, nil
	}
	return out, fmt.Errorf("MutationHandler.Apply(): unknown event kind %d", ev.Kind)
}

func patchFromForm(f Form) models.AwardPatch {
	var patch models.AwardPatch
	if supplied(f.Gender) {
		patch.Gender = models.StringPtr(f.Gender)
	}
	if supplied(f.Country) {
		patch.BornCountry = models.StringPtr(f.Country)
	}
	return patch
}
