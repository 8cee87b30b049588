package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting the CLI.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting the CLI.
type CliCtx struct {
	// Verbose logging flag. Enables debug log output.
	Verbose bool
	// Quiet flag. Suppresses all output.
	Quiet bool
}
