// Package wrapped plays a personal year-in-review as a full-screen,
// vertically navigated slideshow on [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [Run], which validates a dataset, opens
// a window and plays it:
//
//	d := wrapped.DefaultDataset()
//	if err := wrapped.Run(d, wrapped.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// The cmd/wrapped program wraps this with flags, a zap logger and the
// validate and outline subcommands.
//
// # Datasets
//
// A [Dataset] holds the copy, theme colors and every statistic the slides
// show. [DefaultDataset] returns the embedded one; [LoadDataset] reads TOML,
// YAML or JSON chosen by file extension. Unknown keys are rejected.
// [Dataset.Validate] returns all problems joined into one error; unpack them
// with [ValidationErrors].
//
// # Navigation
//
// [Presentation] is the single source of truth for the current slide. Its
// [State] carries the index, the direction of the last move and the slide
// count. Advance, Retreat and Reset notify subscribers registered with
// [Presentation.OnChange] only when the index actually changes.
//
// [Input] maps keys, swipes and button clicks to [Action] values; [Dispatch]
// applies them. Injected events let scripts and tests drive the game without
// a real keyboard.
//
// # Transitions
//
// Every slide owns a [SlideTransition] that moves between hidden, entering,
// active and exiting. A [Deck] attached to a presentation starts the enter
// and exit animations on each change so the outgoing and incoming slides
// overlap. The [Pose] of a transition gives its vertical offset, scale and
// alpha.
//
// # Charts
//
// [DonutChart] lays slices out contiguously from 12 o'clock and sweeps each
// arc in; [DonutArcs] exposes the geometry alone. [RadarChart] places traits
// on evenly spaced axes with distance proportional to score and grows the
// polygon from the center. [CountUp] animates a number from zero.
//
// # Scripts
//
// A [Script] is a YAML or JSON list of steps (key, swipe, click, wait,
// screenshot, quit) executed one per frame, e.g. to capture every slide as
// PNG files into [RunConfig.ScreenshotDir].
//
// [Ebitengine]: https://ebitengine.org
package wrapped
