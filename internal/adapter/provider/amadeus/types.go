package amadeus

// FlightOffersResponse is the body of GET /v2/shopping/flight-offers.
type FlightOffersResponse struct {
	Meta         Meta          `json:"meta"`
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

// Meta carries paging information.
type Meta struct {
	Count int `json:"count"`
}

// Dictionaries resolves the codes used in the offers.
type Dictionaries struct {
	Carriers   map[string]string `json:"carriers"`
	Aircraft   map[string]string `json:"aircraft"`
	Currencies map[string]string `json:"currencies"`
}

// FlightOffer is one priced offer.
type FlightOffer struct {
	ID                     string      `json:"id"`
	Source                 string      `json:"source"`
	OneWay                 bool        `json:"oneWay"`
	LastTicketingDate      string      `json:"lastTicketingDate"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  Price       `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

// Itinerary is one direction of travel. The first itinerary is outbound.
type Itinerary struct {
	// Duration is an ISO 8601 duration such as "PT5H30M"
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one physical flight.
type Segment struct {
	Departure     Endpoint `json:"departure"`
	Arrival       Endpoint `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	Aircraft      Aircraft `json:"aircraft"`
	Duration      string   `json:"duration"`
	NumberOfStops int      `json:"numberOfStops"`
}

// Endpoint is a departure or arrival point. At has no UTC offset.
type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

// Price amounts are decimal strings.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// errorResponse is the error envelope of every Amadeus endpoint.
type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
