// Package fabric lays rectangular claims over a sheet of fabric.
//
// What:
//
//   - ParseClaim reads "#id @ x,y: wxh".
//   - Coverage counts, per square inch, how many claims cover it.
//   - Overlap counts square inches covered by two or more claims.
//   - Intact finds the claim that overlaps no other.
//   - Conflicts lists every intersecting pair of claims.
//
// Complexity:
//
//   - Coverage/Overlap/Intact: O(ΣW·H) over claims plus O(sheet) to count.
//   - Conflicts: O(n²/2).
package fabric
