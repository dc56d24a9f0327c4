package access

type Capability string

const (
	ManageSite       Capability = "manage_site"
	ManageProducts   Capability = "manage_products"
	ManageCategories Capability = "manage_categories"
	ManageOrders     Capability = "manage_orders"
	ManageUsers      Capability = "manage_users"
)
