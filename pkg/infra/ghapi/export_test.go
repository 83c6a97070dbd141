package ghapi

// Export unexported functions for testing
var (
	EndpointForTest = endpoint
)
