package cli

// Command descriptions
const (
	MsgRootUse   = "j2render [flags] TEMPLATE"
	MsgRootShort = "Render a Jinja-style template from JSON, TOML and YAML data"
	MsgRootLong  = `j2render renders a template against data assembled from one or more
sources, merged left to right, with name=value overrides applied last.

A source is a data file (.json, .toml, .yaml or .yml) or a module reference
of the form module:attribute. Built-in modules are "env" (the attribute is
a variable prefix) and "system" (attribute "info"); more can be declared as
[[modules]] in the configuration file.

Without --source, a data file named after the template is searched for in
the current directory, then next to the template.`
	MsgRootExample = `  # Render nginx.conf.j2 to nginx.conf using nginx.conf.json or similar
  j2render nginx.conf.j2

  # Layer two sources and override a nested value
  j2render -s base.yaml -s prod.toml -v server.port=8443 nginx.conf.j2

  # Print to stdout instead of writing a file
  j2render -o stdout motd.j2`
)

// Flag usage
const (
	MsgFlagSource       = "data source file or module:attribute (repeatable, later sources win)"
	MsgFlagVariable     = "override as NAME=VALUE, dotted names nest (repeatable)"
	MsgFlagOutput       = `output file, or "stdout"`
	MsgFlagOutputDir    = "directory for the derived output file"
	MsgFlagNoTrim       = "keep the first newline after a block tag"
	MsgFlagNoLStrip     = "keep whitespace before a block tag"
	MsgFlagNoTrailingNL = "drop the template's final newline"
	MsgFlagConfig       = "configuration file (default $XDG_CONFIG_HOME/j2render/config.toml)"
	MsgFlagVerbose      = "increase verbosity (repeat for INFO, DEBUG, TRACE)"
)

// Status messages
const (
	MsgRenderedFormat = "rendered template written to %s\n"
	MsgVersionFormat  = "j2render version {{.Version}}\n"
)
