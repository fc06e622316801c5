package monkeylearn

// Batch limits for Classify, Extract and Predict.
const (
	DefaultBatchSize = 200
	MinBatchSize     = 100
	MaxBatchSize     = 500
)

// DefaultPerPage is the page size used by ListAll.
const DefaultPerPage = 50

// CallOption tunes a single operation.
type CallOption func(*callSettings)

type callSettings struct {
	retryIfThrottled bool
	batchSize        int
	productionModel  *bool
	sandbox          bool
}

func newCallSettings(opts []CallOption) callSettings {
	cs := callSettings{
		retryIfThrottled: true,
		batchSize:        DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(&cs)
	}
	return cs
}

// WithoutThrottleRetry disables waiting and retrying on throttled responses.
func WithoutThrottleRetry() CallOption {
	return func(cs *callSettings) {
		cs.retryIfThrottled = false
	}
}

// WithThrottleRetry sets whether throttled responses are retried.
func WithThrottleRetry(retry bool) CallOption {
	return func(cs *callSettings) {
		cs.retryIfThrottled = retry
	}
}

// WithBatchSize sets the chunk size of batched operations. The value is
// validated when the operation runs.
func WithBatchSize(size int) CallOption {
	return func(cs *callSettings) {
		cs.batchSize = size
	}
}

// WithProductionModel selects the deployed (true) or the latest trained
// (false) model version. The server default applies when unset.
func WithProductionModel(production bool) CallOption {
	return func(cs *callSettings) {
		cs.productionModel = &production
	}
}

// WithSandbox runs the operation against the sandbox model.
func WithSandbox() CallOption {
	return func(cs *callSettings) {
		cs.sandbox = true
	}
}
