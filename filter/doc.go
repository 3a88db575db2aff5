// Package filter provides the comparison inputs behind generated WhereInput
// types (is, eq, neq, gt, gte, lt, lte, in, notIn, like, iLike, ...) and a
// small expression tree to evaluate them against loaded entities.
//
// Filters are plain values built once at startup; nothing is generated at
// runtime:
//
//	f := filter.And(
//	    filter.Field("completed", func(t *Todo) *bool { return &t.Completed },
//	        filter.BoolComparison{Is: ptr(true)}),
//	    filter.Field("title", func(t *Todo) *string { return &t.Title },
//	        filter.StringComparison{ILike: ptr("%docs%")}),
//	)
//	if err := f.Validate(); err != nil {
//	    return err
//	}
//	done := filter.Apply(todos, f)
package filter
