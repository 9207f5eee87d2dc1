package domain

type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "ACTIVE"
	ClientStatusRestricted ClientStatus = "RESTRICTED"
)

type Client struct {
	ID        int32        `json:"id"`
	Rut       string       `json:"rut"`
	Name      string       `json:"name"`
	Status    ClientStatus `json:"status"`
	CreatedOn string       `json:"created_on"`
}
