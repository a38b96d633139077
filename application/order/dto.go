package order

// OrderRequest 表示创建或修改订单的入参，日期格式为 YYYY-MM-DD。
type OrderRequest struct {
	ClientName         string                   `json:"clientName"`
	ClientPhoneNumber  string                   `json:"clientPhoneNumber"`
	ClientEmailAddress string                   `json:"clientEmailAddress"`
	Products           []ProductQuantityRequest `json:"products"`
	Type               string                   `json:"type" binding:"required"`
	PickUpDate         string                   `json:"pickUpDate"`
	DeliveryDate       string                   `json:"deliveryDate"`
	ReservationDate    string                   `json:"reservationDate"`
	DeliveryAddress    string                   `json:"deliveryAddress"`
	Note               string                   `json:"note"`
}

// ProductQuantityRequest 表示订单中的一个商品及数量。
type ProductQuantityRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// OrderResponse 表示订单返回模型。
type OrderResponse struct {
	ID                 int64                         `json:"id"`
	ClientName         string                        `json:"clientName"`
	ClientPhoneNumber  string                        `json:"clientPhoneNumber"`
	ClientEmailAddress string                        `json:"clientEmailAddress"`
	Products           []ProductWithQuantityResponse `json:"products"`
	Type               string                        `json:"type"`
	PickUpDate         string                        `json:"pickUpDate,omitempty"`
	DeliveryDate       string                        `json:"deliveryDate,omitempty"`
	ReservationDate    string                        `json:"reservationDate,omitempty"`
	DeliveryAddress    string                        `json:"deliveryAddress,omitempty"`
	Note               string                        `json:"note,omitempty"`
	Checked            bool                          `json:"checked"`
}

// ProductWithQuantityResponse 表示下单时的商品快照及数量。
type ProductWithQuantityResponse struct {
	Product  ProductSnapshotResponse `json:"product"`
	Quantity int                     `json:"quantity"`
}

// ProductSnapshotResponse 表示下单时的商品快照。
type ProductSnapshotResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// OrderedProductResponse 表示一段时间内某商品按类型统计的数量。
type OrderedProductResponse struct {
	Name             string `json:"name"`
	PickUpCount      int    `json:"pickUpCount"`
	DeliveryCount    int    `json:"deliveryCount"`
	ReservationCount int    `json:"reservationCount"`
	TotalCount       int    `json:"totalCount"`
}
