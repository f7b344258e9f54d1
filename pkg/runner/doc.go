/*
Package runner connects the command engine to the outside world.

It reads ';'-terminated commands from a stream, prints engine output to the
console and mirrors the session into a transcript file when LOG is active.

# Key Components

  - Shell: reads, sanitizes and assembles commands, then hands them to a Processor.
  - ConsoleSink: a ports.Sink that colors warnings and errors with termenv.
  - Transcript: a ports.Sink and ports.Transcript that tees output into a log file.

# Usage

	console := runner.NewConsoleSink(os.Stdout)
	transcript := runner.NewTranscript(console)
	engine := runtime.NewEngine(
		runtime.WithSink(transcript),
		runtime.WithTranscript(transcript),
	)

	shell := runner.NewShell(engine, transcript, runner.WithRecorder(transcript))
	if err := shell.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
