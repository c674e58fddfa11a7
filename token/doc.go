// Package token provides line level lexical support for h5dump reports.
//
// [Pattern] recognizes the header lines which open container, group and
// dataset blocks and extracts their quoted names.
//
// [Balance] finds the line closing the block opened by a header line by
// counting brace tokens.
package token
