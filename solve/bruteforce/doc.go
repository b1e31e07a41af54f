// Package bruteforce enumerates every edge-multiplicity tuple in
// {0,1,2}^|edges| in lexicographic order (earlier edges vary slowest),
// pruning on demand, then crossing, then connectivity. It operates
// directly on islands and candidate edges rather than on a CNF
// formula, and is intended only for small instances.
package bruteforce
