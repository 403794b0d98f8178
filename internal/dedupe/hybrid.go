package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// HybridBackend spills deduplication state to disk, used for runs too
// large for the in-memory backend. Replay order is key-sorted, which is
// still deterministic for identical inputs.
type HybridBackend struct {
	storage *hybrid.HybridMap
}

func NewHybridBackend() *HybridBackend {
	h := &HybridBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for passx dedupe got: %v", err)
	}
	h.storage = db
	return h
}

func (h *HybridBackend) Upsert(elem string) {
	if err := h.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: hybrid: got %v while writing %v", err, elem)
	}
}

func (h *HybridBackend) IterCallback(callback func(elem string) bool) {
	stopped := false
	h.storage.Scan(func(k, _ []byte) error {
		if stopped {
			return nil
		}
		if !callback(string(k)) {
			stopped = true
		}
		return nil
	})
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}
