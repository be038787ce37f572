package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormPlugin_RecordsStatements(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.Use(GormPlugin(provider)))

	type lot struct {
		ID       uint
		Quantity int
	}
	require.NoError(t, db.AutoMigrate(&lot{}))
	require.NoError(t, db.Create(&lot{Quantity: 3}).Error)

	var found lot
	require.NoError(t, db.Where("quantity = ?", 3).First(&found).Error)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)
	for _, s := range spans {
		for _, attr := range s.Attributes() {
			if attr.Key == "db.statement" {
				assert.NotContains(t, attr.Value.AsString(), "= 3", "query variables must not be exported")
			}
		}
	}
}
