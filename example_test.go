package paramio_test

import (
	"context"
	"fmt"

	"github.com/paramio/paramio"
	"github.com/paramio/paramio/blobstore"
	"github.com/paramio/paramio/linalg"
	"github.com/paramio/paramio/model"
	"github.com/paramio/paramio/scorer"
)

func Example() {
	ctx := context.Background()
	mgr := paramio.NewManager(blobstore.NewMemoryStore())

	// A training run produced these coefficients.
	trained := model.NewLinearModelData(linalg.NewDenseFromValues(0.5, -0.25))
	if _, err := mgr.Checkpoint(ctx, "linear", trained); err != nil {
		panic(err)
	}

	// Later, inference reloads the newest checkpoint and scores with it.
	var data model.LinearModelData
	if err := mgr.LoadLatest(ctx, "linear", &data); err != nil {
		panic(err)
	}

	m, err := scorer.NewLinearModel(&data, nil)
	if err != nil {
		panic(err)
	}
	margin, err := m.Margin(linalg.NewDenseFromValues(2, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(margin)
	// Output: 0
}
