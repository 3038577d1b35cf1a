/*
Package operation implements the core bulk-rename logic.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|    Match    |
	|  (Expand)   |
	+------+------+

🎯 Purpose:
- Orchestrates matching, expansion, collision checking and renaming
- Owns construction of the ordered match set
- Coordinates between the walker (discovery) and status (reporting)

🔄 Flow:
1. Receives file paths from the walker
2. Sorts them and runs match → pad → expand per file
3. Reports each match, then checks for target collisions
4. Applies renames unless the run is a dry run

⚡ Key Responsibilities:
- Deterministic match-set ordering
- Duplicate-target detection before any rename
- File-by-file renaming with directory creation
- Error propagation: per-file no-match is recovered, everything else aborts

🤝 Interfaces:
- walker.Lister: source of candidate filenames
- status.Reporter: observational match/rename reporting
- config.Config: validated run parameters

📝 Design Philosophy:
The operator is a pure pipeline over path strings: discovery is delegated to
the walker, presentation to status, and the regex mechanics to the match
package. Renames are applied independently, with no transaction spanning the
set — a mid-batch filesystem failure leaves earlier renames applied, and the
error says so.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Lister:   walker.NewOSLister(cfg.Ignore),
		Reporter: status.NewConsoleReporter(),
	})
	if err != nil {
		return err
	}
	matches, err := op.Run(ctx)
*/
package operation
