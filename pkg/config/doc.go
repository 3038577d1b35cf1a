/*
Package config manages configuration parsing and validation for renagex.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Holds the run configuration (pattern, replacement, flags)
- Validates it before any matching work starts
- Loads optional per-directory defaults from a config file

🔄 Flow:
1. Commands assemble a Config from arguments and flags
2. An optional .renagex.{hcl,yaml} file contributes defaults
3. Validate fills in defaults and rejects invalid combinations

⚡ Key Responsibilities:
- Rejecting a real rename without a replacement template, before any work
- Format abstraction via the Parser registry
- Keeping "unset" distinguishable from explicit zero values in file defaults

🔍 Example:

	fc, err := config.LoadDefault(ctx)
	if err != nil {
		return err
	}
	cfg := &config.Config{Pattern: pattern, Replacement: repl}
	fc.Apply(ctx, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
