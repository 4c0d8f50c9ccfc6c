/*
Package runner drives one-shot transcodes from the command line.

It acts as the bridge between the Engine and the terminal: it reads the payload
(argument or stdin), applies the input policy (SanitizeInput), runs the engine and
hands the result to a pluggable OutputHandler.

# Key Components

  - Runner: Reads, sanitizes, transcodes and writes a single request.
  - OutputHandler: Decouples how results are presented (text, JSON, table, markdown, mermaid).

# Usage

	r := runner.NewRunner(helix.New(), runner.NewTextHandler(os.Stdout))
	if err := r.Run(ctx, domain.ModeEncode, "Hi"); err != nil {
		log.Fatal(err)
	}
*/
package runner
