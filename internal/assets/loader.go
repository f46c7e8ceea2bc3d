package assets

// AssetLoader loads stylesheets and page templates by name.
type AssetLoader interface {
	// LoadStyle returns the stylesheet name.css. It fails with
	// ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the template name.html. It fails with
	// ErrTemplateNotFound or ErrInvalidAssetName.
	LoadTemplate(name string) (string, error)
}
