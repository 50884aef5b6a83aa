// Package viz renders trajectories in the terminal.
//
// [PlotHeights] draws the height-over-time samples with asciigraph,
// [FormatResult] renders the summary panel, and [NewFormModel] is the
// interactive bubbletea launch form that recomputes on every keystroke.
package viz
