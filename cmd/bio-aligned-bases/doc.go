/*Command bio-aligned-bases counts the reference positions covered by the
  aligned blocks of a sample's read pairs, on a circular reference that was
  padded before alignment.

  The blocks of both mates (<prefix>.read_1.psl and <prefix>.read_2.psl) are
  pooled per read name, folded back onto the unpadded reference, and unioned
  per read; the per-read coverages are summed.  The result is written as
  "<prefix>\t<count>" to <prefix>.aligned_bases.txt.

  With -fai, the reference length is read from the FASTA index, which is
  generated from the FASTA when the file does not exist yet.

  Usage: bio-aligned-bases [-fai chrM.fa.fai] [-method merge|bitmap] <prefix> chrM.fa
*/
package main
