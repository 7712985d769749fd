package constants

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a number"
	VALIDATION_FAILED          = "Validation failed"
	MISSING_TOKEN              = "Missing token"
	INVALID_TOKEN              = "Invalid token"
	NOT_STAFF                  = "Staff access required"
	FORBIDDEN_KITCHEN          = "You cannot manage this kitchen"
)

const (
	KITCHEN_NOT_FOUND      = "Kitchen not found"
	KITCHEN_CLOSED         = "Kitchen is closed"
	SPACE_NOT_FOUND        = "Space not found"
	SPACE_HAS_NO_KITCHEN   = "Space is not served by a kitchen"
	USER_NOT_FOUND         = "User not found"
	MENU_NOT_FOUND         = "Menu not found"
	MENU_ITEM_NOT_FOUND    = "Menu item not found"
	MENU_ITEMS_MISSING     = "Some menu items do not exist"
	MIXED_MENU_ORDER       = "Order items must belong to a single menu"
	ORDER_ITEMS_EMPTY      = "Order must contain at least one item"
	ORDER_NOT_FOUND        = "Order not found"
	ORDER_ITEM_NOT_FOUND   = "Order item not found"
	ORDER_NUMBERS_USED_UP  = "No order number available for today"
	CHOICE_NOT_FOUND       = "Menu item option choice not found"
	OPTION_NOT_FOUND       = "Menu item option not found"
	OPTION_STILL_LINKED    = "Menu item option is still linked to menu items"
	OPTION_ALREADY_LINKED  = "Menu item option is already linked to this item"
	OPTION_NOT_LINKED      = "Menu item option is not linked to this item"
	DUPLICATE_OPENING_DAY  = "Opening hours contain the same day twice"
	INVALID_STATUS_CHANGE  = "Order item status change is not allowed"
	CALL_NOT_FOUND         = "Call not found"
	CALL_ALREADY_RESOLVED  = "Call is already resolved"
	INVALID_KITCHEN_CONFIG = "Kitchen opening hours are misconfigured"
)

const (
	ROLE_ADMIN   = "admin"
	ROLE_STAFF   = "staff"
	ROLE_KITCHEN = "kitchen"
)
