// Package bench runs a heuristic over a list of graph files and reports
// batch averages.
//
// The list file holds one graph path per line (blank lines are skipped;
// relative paths resolve against the list file's directory). Every file is
// loaded with graphio, solved Repeat times and timed in milliseconds. Every
// BatchSize consecutive files form a batch whose mean time and mean solution
// size are logged with klog and appended to the log file as
//
//	<label> | Time MED: <ms> ms | Result MED: <size>
//
// Labels are taken from Config.Labels in order (densities 0.1 to 0.9 by
// default); once they run out the zero-based batch index is used. A trailing
// group smaller than BatchSize is reported per file but not averaged.
//
// Files may be processed concurrently on an ants pool (Config.Workers). Each
// job owns its graph, tracker and generator, so a single heuristic run is
// never parallelized. Wall times measured under concurrency include
// scheduler contention; use Workers == 1 for timing studies.
package bench
