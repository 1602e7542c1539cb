package middleware

import (
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueAvailability/pkg/metrics"
)

// Stack middleware корневого роутера, от внешнего к внутреннему.
// Recovery стоит последним: ответ 500 после паники попадает в access-лог и метрики.
// m == nil - метрики выключены.
func Stack(log Logger, m *metrics.Metrics) []mux.MiddlewareFunc {
	stack := []mux.MiddlewareFunc{RequestID, Logging(log)}
	if m != nil {
		stack = append(stack, MetricsMiddleware(m))
	}
	return append(stack, Recovery(log))
}
