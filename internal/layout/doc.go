// Package layout is the vocabulary shared between the assembler and the
// paging engine: blocks, named styles and page geometry.
//
// Nothing here knows about resumes or PDF bytes.
package layout
