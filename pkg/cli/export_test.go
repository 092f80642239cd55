package cli

// NewApp exposes the root command for tests
var NewApp = newApp
