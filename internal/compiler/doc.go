// Package compiler turns machine description and tape text into domain values.
//
// The configuration grammar is line oriented:
//
//	state_number:3;
//	accepting_states:1,2;
//	tape_offset:4;
//	transitions:
//	(0,0):(1,1,RIGHT);
//	(1,0):(2,0,LEFT);
//
// Directive lines may appear in any order until the transitions header; every line
// after it is a transition. The tape grammar is a single line of ';' separated integers.
package compiler
