package cli

// Command descriptions
const (
	MsgRootShort = "Render documentation trees as terminal reports"
	MsgRootLong  = `docprint renders a tree of documentation nodes (functions, classes,
interfaces, enums, namespaces...) as an indented, optionally colored,
plain-text report.`

	MsgRenderShort = "Render documentation node files"
	MsgRenderLong  = `Render reads one or more JSON or YAML documents, each a list of
documentation nodes, and writes the report to stdout. With no file, or
with "-", the document is read from stdin.`
	MsgRenderExample = `  docprint render api.json                 # Render a file
  docprint render --private api.json       # Include private class members
  docprint render --filter Http.Client api.json
  deno doc --json mod.ts | docprint render # Read from stdin`

	MsgConfigShort = "Print a commented configuration template"
	MsgConfigLong  = "Print the default configuration with every value commented out.\n\nWith -w, write it to the user config file instead."

	MsgServeShort = "Serve the renderer over HTTP"
	MsgServeLong  = `Serve starts an HTTP server. POST a JSON or YAML document to /render and
the report comes back as plain text. Query parameters color, private,
filter and format override the configuration per request.`

	MsgThemeShort = "Preview a color theme"
	MsgThemeLong  = `Theme lists the styles of a theme with a sample of each. With no file it
previews the configured theme, or the built-in one.`

	MsgVersionShort = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/docprint/config.toml)"
	MsgFlagColor   = "When to color output: auto, always or never"
	MsgFlagPrivate = "Include private class members"
	MsgFlagFilter  = "Only render nodes matching a dotted name, e.g. Namespace.Class"
	MsgFlagFormat  = "Input format: auto, json or yaml"
	MsgFlagTheme   = "Path to a YAML color theme"
	MsgFlagWrite   = "Write the template to the user config file"
	MsgFlagAddr    = "Address to listen on"
)

// Result messages
const (
	MsgConfigWritten   = "Wrote configuration template to %s\n"
	MsgThemeBackground = "background: %s\n"
	MsgThemeSample     = "The quick brown fox"
)
