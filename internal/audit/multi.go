package audit

import (
	"realty/internal/domain"
	"realty/internal/modules/registry"
)

// MultiSink fans each event out to every configured sink.
type MultiSink []registry.EventSink

func (m MultiSink) Publish(e domain.Event) {
	for _, sink := range m {
		if sink != nil {
			sink.Publish(e)
		}
	}
}
