package cli

// Export unexported functions for testing
var (
	ParseRemoteURLForTest = parseRemoteURL
	ParseRepoArgForTest   = parseRepoArg
	ToCredentialForTest   = toCredential
	ResolveFormatForTest  = resolveFormat
)
