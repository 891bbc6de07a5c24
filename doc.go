// Package astapp reads and writes the block-property configuration format
// stored in .astappcnt files:
//
//	APP { name: "Staff survey"; group_id: 5; }
//	STYLE { theme: dark; }
//	QUESTION "q1" TYPE "multiple_choice" {
//	  text: "Pick one"; points: 10;
//	  options: [{id:"a", text:"A", correct:true}, {id:"b", text:"B", correct:false}];
//	}
//
// [Parse] turns text into an [ir.Document] and [Serialize] turns a document
// back into canonical text. Parsing canonical text yields an equal document,
// except that a float with an integral value, such as 5.0, reads back as
// the integer 5.
//
// The subpackages hold the pieces: token (lexing and errors), parse,
// encode, ir (the document model), convert (JSON and YAML), eval
// (expressions), libdiff (comparison), format (format names) and dirbuild
// (assembling a document from a build directory). The astapp command and
// the astapp-lsp language server live under cmd.
package astapp
