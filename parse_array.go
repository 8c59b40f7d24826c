package jsonschemair

import "strconv"

// parseArray builds an Array node. It has one child, named "items".
func parseArray(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	itemCtx := ctx.child("items")
	_, childResult := parseNode(raw.Items.Single, itemCtx)

	node := &Array{
		nodeBase: nodeBase{path: ctx.path},
		Item:     itemCtx.path,
	}
	return node, childResult
}

// parseTuple builds a Tuple node. Children are named by positional index:
// "0", "1", ….
func parseTuple(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	result := newParserResult()
	items := make([]Path, 0, len(raw.Items.Multi))
	for i, itemSchema := range raw.Items.Multi {
		itemCtx := ctx.child(strconv.Itoa(i))
		_, childResult := parseNode(itemSchema, itemCtx)
		result.merge(childResult)
		items = append(items, itemCtx.path)
	}

	node := &Tuple{
		nodeBase: nodeBase{path: ctx.path},
		Items:    items,
	}
	return node, result
}

