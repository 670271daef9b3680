package room

type clientStateSeat struct {
	Seat        int  `json:"seat"`
	IsConnected bool `json:"isConnected"`
}
