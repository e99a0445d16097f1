package handlers

// HandlerBundle groups every handler the router needs, so route registration
// takes a single argument.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Manage  *ManageHandler
	Admin   *AdminHandler
	Catalog *CatalogHandler
	Storage *StorageHandler
	Action  *ActionHandler
}
