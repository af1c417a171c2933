package graph

import (
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// adjacency topology
//*******************************************

// CSR-layout adjacency for both directions.
type _AdjacencyArray struct {
	fwd_starts Array[int32]
	fwd_refs   Array[structs.EdgeRef]
	bwd_starts Array[int32]
	bwd_refs   Array[structs.EdgeRef]
}

func _BuildTopology(nodes Array[structs.Node], edges Array[structs.Edge]) _AdjacencyArray {
	node_count := len(nodes)
	fwd_counts := NewArray[int32](node_count + 1)
	bwd_counts := NewArray[int32](node_count + 1)
	for _, edge := range edges {
		fwd_counts[edge.NodeA+1] += 1
		bwd_counts[edge.NodeB+1] += 1
	}
	for i := 0; i < node_count; i++ {
		fwd_counts[i+1] += fwd_counts[i]
		bwd_counts[i+1] += bwd_counts[i]
	}

	fwd_refs := NewArray[structs.EdgeRef](len(edges))
	bwd_refs := NewArray[structs.EdgeRef](len(edges))
	fwd_offsets := NewArray[int32](node_count)
	bwd_offsets := NewArray[int32](node_count)
	for i, edge := range edges {
		fwd_index := fwd_counts[edge.NodeA] + fwd_offsets[edge.NodeA]
		fwd_refs[fwd_index] = structs.EdgeRef{EdgeID: int32(i), OtherID: edge.NodeB}
		fwd_offsets[edge.NodeA] += 1

		bwd_index := bwd_counts[edge.NodeB] + bwd_offsets[edge.NodeB]
		bwd_refs[bwd_index] = structs.EdgeRef{EdgeID: int32(i), OtherID: edge.NodeA}
		bwd_offsets[edge.NodeB] += 1
	}

	return _AdjacencyArray{
		fwd_starts: fwd_counts,
		fwd_refs:   fwd_refs,
		bwd_starts: bwd_counts,
		bwd_refs:   bwd_refs,
	}
}

func (self *_AdjacencyArray) ForAdjacent(node int32, dir Direction, callback func(ref structs.EdgeRef)) {
	var starts Array[int32]
	var refs Array[structs.EdgeRef]
	if dir == FORWARD {
		starts = self.fwd_starts
		refs = self.fwd_refs
	} else {
		starts = self.bwd_starts
		refs = self.bwd_refs
	}
	for i := starts[node]; i < starts[node+1]; i++ {
		callback(refs[i])
	}
}
