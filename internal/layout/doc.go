// Package layout paginates a collected document in two passes.
//
// Pass 1 (Paginate) places the title page, the table of contents and every
// content block onto pages, capturing each page as a list of deferred draw
// commands and recording the page each heading starts on. Nothing is drawn
// yet: the page count is only known once the last block has been placed.
//
// Pass 2 (Deferred.Replay) resolves the table of contents against the heading
// pages, then replays every page onto a Canvas together with the running
// header and the "Page X of N" footer.
//
// Text widths come from a Measurer so layout does not depend on a particular
// PDF library; internal/render provides the gofpdf implementations of
// Measurer and Canvas.
package layout
