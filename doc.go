// Package gridpath is a step-driven pathfinding engine for square grids,
// built to show how BFS, DFS and A* explore the same map differently.
//
// What is gridpath?
//
//	An N×N grid of free cells, walls, one start and one end, searched with
//	4-directional moves of unit cost:
//		• BFS: shortest route, explores in rings
//		• DFS: some route, dives along one branch
//		• A*:  shortest route, Manhattan-guided
//
//	Every run can be stepped one cell at a time, observed through
//	snapshots, paced for animation or cancelled through a context.
//
// Packages:
//
//	gridgraph/ — the grid: cells, markers, editing, text codec, regions, wall breach
//	frontier/  — node arena and the queue, stack and best-first frontiers
//	search/    — the driver: Stepper, Run, Find, snapshots and results
//	bfs/       — breadth-first entry points and distance fields
//	dfs/       — depth-first entry points
//	astar/     — A* entry points and the Manhattan lower bound
//	render/    — ASCII frames and the statistics table
//	config/    — GRIDPATH_* settings from the environment and .env
//	logging/   — zap logger construction
//	metrics/   — Prometheus collectors for runs and HTTP traffic
//	server/    — HTTP API with JSON and server-sent event streaming
//
// Commands:
//
//	cmd/gridpath  — terminal runner: single, comparison and animated searches
//	cmd/gridpathd — HTTP daemon
//
// Quick ASCII example (S start, E end, # wall, * route):
//
//	S**.
//	.#*.
//	.#**
//	...E
//
//	go get github.com/katalvlaran/gridpath
package gridpath
