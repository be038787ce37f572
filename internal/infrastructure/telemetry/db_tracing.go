package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// GormPlugin records a span per gorm statement into provider. Query
// variables stay out of the spans since they carry buyer contact details.
func GormPlugin(provider trace.TracerProvider) gorm.Plugin {
	return otelgorm.NewPlugin(
		otelgorm.WithTracerProvider(provider),
		otelgorm.WithDBName("shop"),
		otelgorm.WithoutQueryVariables(),
	)
}

// GormPlugins lists the plugins persistence.Open should install for cfg
func (tp *TracerProvider) GormPlugins() []gorm.Plugin {
	if !tp.IsEnabled() || !tp.config.DBTraceEnabled {
		return nil
	}
	return []gorm.Plugin{GormPlugin(tp.provider)}
}
