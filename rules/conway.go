package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A cell is born with exactly 3 living neighbors, survives with 2 or 3, and dies otherwise:
neighbors == 3 || (neighbors == 2 && alive)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (neighbors == 2 && alive)
}
