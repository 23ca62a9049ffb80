package badtag

type Account struct {
	ID    int    `mapper:"required"`
	Owner string `mapper:"requried"`
}
