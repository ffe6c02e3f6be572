// Package diagram renders a resolved pipeline step as an ASCII diagram and
// a textual parameter listing.
//
// The diagram is a bordered box carrying the step name, with the declared
// input ports along the top edge and the output ports along the bottom
// edge. Connector stacks above and below the box trace each port's edges to
// the neighboring steps that produce or consume its artifacts:
//
//	+       x        3-rtl
//	+       x        design
//	|       x
//	V       V
//	-----------------
//	| design | sdc  |
//	-----------------
//	|               |
//	|   4-synth     |
//	|               |
//	-----------------
//	|    netlist    |
//	-----------------
//	        V
//	        |         5-place
//	        |         netlist
//
// Rendering is a pure function of the step record: identical input yields
// byte-identical output, so diagrams can be diffed across tool runs and
// regression baselines. Ports are always visited in the step's declared
// order, never in edge-map iteration order.
package diagram
