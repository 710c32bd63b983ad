// Command nwalign aligns an observed sequence against a reference from the
// command line and prints the edit script.
//
//	nwalign sequence ACT ACGT
//	nwalign subsequence --match 2 TTAGACGTC CGTTTAGACGTC
package main

func main() {
	Execute()
}
