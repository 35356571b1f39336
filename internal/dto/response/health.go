package response

// Probe status values.
const (
	HealthMissingEnv    = "missing_env"
	HealthConnected     = "connected"
	HealthSchemaMissing = "schema_missing"
	HealthUnreachable   = "unreachable"
	HealthWriteOK       = "write_ok"
	HealthWriteFailed   = "write_failed"
)

type HealthResponse struct {
	OK        bool   `json:"ok"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latencyMs,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
