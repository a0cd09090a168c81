package chain

import (
	"fmt"
	"sort"
	"strings"
)

// Network describes an Asset Hub deployment the tool can mint on.
type Network struct {
	ID          string
	Name        string
	RPCURL      string
	SS58Format  uint16
	ExplorerURL string
}

var networks = map[string]Network{
	"paseo": {
		ID:          "paseo",
		Name:        "Paseo Asset Hub",
		RPCURL:      "wss://sys.turboflakes.io/asset-hub-paseo",
		SS58Format:  0,
		ExplorerURL: "https://assethub-paseo.subscan.io",
	},
	"westend": {
		ID:          "westend",
		Name:        "Westend Asset Hub",
		RPCURL:      "wss://asset-hub-westend-rpc.n.dwellir.com",
		SS58Format:  0,
		ExplorerURL: "https://assethub-westend.subscan.io",
	},
}

// Lookup returns the built-in network for id (case-insensitive).
func Lookup(id string) (Network, error) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q (known: %s)", id, strings.Join(NetworkIDs(), ", "))
	}
	return n, nil
}

func NetworkIDs() []string {
	ids := make([]string, 0, len(networks))
	for id := range networks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithOverrides replaces the endpoint and explorer when non-empty.
func (n Network) WithOverrides(rpcURL, explorerURL string) Network {
	if rpcURL != "" {
		n.RPCURL = rpcURL
	}
	if explorerURL != "" {
		n.ExplorerURL = strings.TrimRight(explorerURL, "/")
	}
	return n
}

func (n Network) CollectionURL(collection uint32) string {
	return fmt.Sprintf("%s/nft_collection/%d", n.ExplorerURL, collection)
}

func (n Network) ItemsURL(collection uint32) string {
	return n.CollectionURL(collection) + "?tab=tokens"
}

func (n Network) ExtrinsicURL(hash string) string {
	return n.ExplorerURL + "/extrinsic/" + hash
}
