package route

// User-facing routing messages. These surface verbatim in RouteResult.Error.
const (
	MsgAddNeedsTwoNumbers = "Please provide two numbers to add (e.g., 'add 12 and 7')."
	MsgUnknownIntent      = "Sorry, I couldn't understand. Try asking for weather, a joke, or to add numbers."
)

// DefaultLocation is used when no location can be captured from a weather query.
const DefaultLocation = "your city"
