package uid

import (
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

const OrderPrefix = "SO-"

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the snowflake node. Only the first call has any effect.
func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

// OrderNo returns a new unique, time ordered order number such as
// "SO-1A2B3C4D5E6F".
func OrderNo() string {
	if node == nil {
		log.Fatalf("uid package not initialized")
	}
	return OrderPrefix + strings.ToUpper(node.Generate().Base36())
}
