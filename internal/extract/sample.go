// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

// Sample is the built-in demonstration text. It covers a name on the marker
// line, a stray name with no marker, a name several lines below its marker,
// and a wrong extension.
const Sample = `
  Some initial text here just for context.
  Here's a loading-spinner-container and the file is document-v1.pdf right after it.
  Another line, maybe with some other data.
  ignorethis.txt
  Then we see loading-spinner-container again for report-final.txt.

  And now for a multi-line case.
  The text is here: loading-spinner-container
  ... and the file is way down here on another line ...
  ... my-multiline-report.pdf ...

  And one more time for good measure: loading-spinner-container should find my-special-document.pdf.
  This one should not match: another-container report.docx
`
