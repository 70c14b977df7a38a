package character_test

import "fmt"

// seqGenerator hands out "id-1", "id-2", ... so tests can assert on
// deterministic ids.
type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
