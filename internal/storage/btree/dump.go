package btree

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	btreelog "github.com/Mayhem93/btree-js/util/logger"
)

// Dump writes a structural dump of the tree to log at debug level: node
// identity, leaf flag, entries/keys, children, and prev/next leaf
// identity. It exists purely for interactive debugging — no wire format,
// no invariant depends on it. If log is nil, the package's prefixed
// logger is used; its level is Info, so nothing is emitted through it
// unless that level is raised to Debug.
func (t *Tree[K, V]) Dump(log *logger.Logger) {
	if log == nil {
		log = btreelog.L
	}
	t.dumpNode(log, t.root, 0)
}

func (t *Tree[K, V]) dumpNode(log *logger.Logger, n *node[K, V], depth int) {
	fields := logger.Fields{
		"id":    nodeID(n),
		"depth": depth,
		"leaf":  n.isLeaf,
	}

	if n.isLeaf {
		keys := make([]K, len(n.entries))
		for i, e := range n.entries {
			keys[i] = e.key
		}
		fields["keys"] = keys
		fields["prev"] = nodeID(n.prev)
		fields["next"] = nodeID(n.next)
		log.WithFields(fields).Debug("btree leaf")
		return
	}

	children := make([]string, len(n.children))
	for i, c := range n.children {
		children[i] = nodeID(c)
	}
	fields["keys"] = n.keys
	fields["children"] = children
	log.WithFields(fields).Debug("btree internal")

	for _, c := range n.children {
		t.dumpNode(log, c, depth+1)
	}
}

// nodeID formats a node's identity for the structural dump. A nil node
// (absent leaf link) prints as "<nil>".
func nodeID[K any, V any](n *node[K, V]) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%p", n)
}
