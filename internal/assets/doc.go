// Package assets provides the stylesheet and page template of the HTML
// output.
//
// The built-in assets are embedded at compile time:
//
//	styles/report.css      dark theme with sidebar, search and print rules
//	templates/page.html    html/template page with the navigation script
//
// A custom directory with the same layout can override any of them.
// AssetResolver tries that directory first and falls back to the embedded
// copy when a file is missing there. Names are plain stems; FilesystemLoader
// resolves symlinks and refuses paths that leave its base directory.
package assets
