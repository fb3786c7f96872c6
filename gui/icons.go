package gui

// Icon is a code point in the icon font (Entypo). Icons are drawn as text,
// so any face with the icon font registered as fallback renders them.
type Icon rune

// String returns the UTF-8 encoding of the icon.
func (i Icon) String() string {
	if i == 0 {
		return ""
	}
	return string(rune(i))
}

// NoIcon means "no icon".
const NoIcon Icon = 0

const (
	IconInfo             Icon = 0x2139
	IconArrowLeft        Icon = 0x2190
	IconArrowUp          Icon = 0x2191
	IconArrowRight       Icon = 0x2192
	IconArrowBottom      Icon = 0x2193
	IconArrowUpLeft      Icon = 0x21B0
	IconArrowDownRight   Icon = 0x21B3
	IconArrowSwap        Icon = 0x21C6
	IconInfinite         Icon = 0x221E
	IconPlus             Icon = 0x229E
	IconMinus            Icon = 0x229F
	IconHome             Icon = 0x2302
	IconKeyboard         Icon = 0x2328
	IconBackspace        Icon = 0x232B
	IconPause            Icon = 0x2389
	IconFastForward      Icon = 0x23E9
	IconRewind           Icon = 0x23EA
	IconEnd              Icon = 0x23ED
	IconBegin            Icon = 0x23EE
	IconHourglass        Icon = 0x23F3
	IconStop             Icon = 0x25A0
	IconTriangleUp       Icon = 0x25B4
	IconPlay             Icon = 0x25B6
	IconTriangleRight    Icon = 0x25B8
	IconTriangleDown     Icon = 0x25BE
	IconTriangleLeft     Icon = 0x25C2
	IconLightDark        Icon = 0x25D1
	IconCloud            Icon = 0x2601
	IconStarFull         Icon = 0x2605
	IconStarEmpty        Icon = 0x2606
	IconTrash            Icon = 0x2615
	IconMenu             Icon = 0x2630
	IconMoon             Icon = 0x263D
	IconHeartEmpty       Icon = 0x2661
	IconHeartFull        Icon = 0x2665
	IconNote1            Icon = 0x266A
	IconNote2            Icon = 0x266B
	IconGrid             Icon = 0x268F
	IconFlag             Icon = 0x2691
	IconTools            Icon = 0x2692
	IconGear             Icon = 0x2699
	IconWarning          Icon = 0x26A0
	IconLightning        Icon = 0x26A1
	IconRecord           Icon = 0x26AB
	IconCloudZap         Icon = 0x26C8
	IconReel             Icon = 0x2707
	IconPlane            Icon = 0x2708
	IconMail             Icon = 0x2709
	IconPencil           Icon = 0x270E
	IconFeather          Icon = 0x2712
	IconCheck            Icon = 0x2713
	IconX                Icon = 0x2715
	IconXCircle          Icon = 0x2716
	IconXSquare          Icon = 0x274E
	IconQuestion         Icon = 0x2753
	IconQuote            Icon = 0x275E
	IconPlusCircle       Icon = 0x2795
	IconMinusCircle      Icon = 0x2796
	IconArrowRight2      Icon = 0x27A1
	IconSend             Icon = 0x27A2
	IconShare            Icon = 0x27A6
	IconRefreshLeft      Icon = 0x27F2
	IconRefreshRight     Icon = 0x27F3
	IconArrowLeft2       Icon = 0x2B05
	IconArrowUp2         Icon = 0x2B06
	IconArrowDown2       Icon = 0x2B07
	IconListPlus         Icon = 0xE003
	IconList             Icon = 0xE005
	IconArrowLeft3       Icon = 0xE4AD
	IconArrowRight3      Icon = 0xE4AE
	IconArrowUp3         Icon = 0xE4AF
	IconArrowDown3       Icon = 0xE4B0
	IconPersonPlus       Icon = 0xE700
	IconQuestionCircle   Icon = 0xE704
	IconInfoCircle       Icon = 0xE705
	IconEye              Icon = 0xE70A
	IconTag              Icon = 0xE70C
	IconCloudUpload      Icon = 0xE711
	IconReply            Icon = 0xE712
	IconReplyAll         Icon = 0xE713
	IconCode             Icon = 0xE714
	IconShare2           Icon = 0xE715
	IconPrinter          Icon = 0xE716
	IconRefresh2         Icon = 0xE717
	IconComment          Icon = 0xE718
	IconChat             Icon = 0xE720
	IconVcard            Icon = 0xE722
	IconDirections       Icon = 0xE723
	IconPin              Icon = 0xE724
	IconMap              Icon = 0xE727
	IconCompass          Icon = 0xE728
	IconTrash2           Icon = 0xE729
	IconDocumentEmpty    Icon = 0xE730
	IconDocumentText     Icon = 0xE731
	IconDocuments        Icon = 0xE736
	IconRectangle        Icon = 0xE737
	IconFileDrawer       Icon = 0xE738
	IconRss              Icon = 0xE73A
	IconShare3           Icon = 0xE73C
	IconShoppingCart     Icon = 0xE73D
	IconLogin            Icon = 0xE740
	IconLogout           Icon = 0xE741
	IconRightTriangle    Icon = 0xE742
	IconExpand           Icon = 0xE744
	IconContract         Icon = 0xE746
	IconCopy             Icon = 0xE74C
	IconWebPublish       Icon = 0xE74D
	IconWindow           Icon = 0xE74E
	IconSpinner          Icon = 0xE74F
	IconPieChart         Icon = 0xE751
	IconLanguages        Icon = 0xE752
	IconWaves            Icon = 0xE753
	IconDatabase         Icon = 0xE754
	IconHdd              Icon = 0xE755
	IconBucket           Icon = 0xE756
	IconThermometer      Icon = 0xE757
	IconArrowDownCircle  Icon = 0xE758
	IconArrowLeftCircle  Icon = 0xE759
	IconArrowRightCircle Icon = 0xE75A
	IconArrowUpCircle    Icon = 0xE75B
	IconChevronDown      Icon = 0xE75C
	IconChevronLeft      Icon = 0xE75D
	IconChevronRight     Icon = 0xE75E
	IconChevronUp        Icon = 0xE75F
	IconChevronThinDown  Icon = 0xE760
	IconChevronThinLeft  Icon = 0xE761
	IconChevronThinRight Icon = 0xE762
	IconChevronThinUp    Icon = 0xE763
	IconChevronBigDown   Icon = 0xE764
	IconChevronBigLeft   Icon = 0xE765
	IconChevronBigRight  Icon = 0xE766
	IconChevronBigUp     Icon = 0xE767
	IconProgress0        Icon = 0xE768
	IconProgress1        Icon = 0xE769
	IconProgress2        Icon = 0xE76A
	IconProgress3        Icon = 0xE76B
	IconHistory          Icon = 0xE771
	IconNetwork          Icon = 0xE776
	IconTrayEmpty        Icon = 0xE777
	IconHddSave          Icon = 0xE778
	IconBuoy             Icon = 0xE788
	IconTag2             Icon = 0xE789
	IconDot1             Icon = 0xE78B
	IconDot2             Icon = 0xE78C
	IconDot3             Icon = 0xE78D
	IconSuitcase2        Icon = 0xE78E
	IconBranch           Icon = 0xE790
	IconFork             Icon = 0xE791
	IconBranch2          Icon = 0xE792
	IconBranch3          Icon = 0xE793
	IconBranch4          Icon = 0xE794
	IconBrush            Icon = 0xE79A
	IconPaperPlane       Icon = 0xE79B
	IconMagnet           Icon = 0xE7A1
	IconSpeedometer      Icon = 0xE7A2
	IconCone             Icon = 0xE7A3
	IconCc               Icon = 0xE7A5
	IconPersonCircle     Icon = 0xE7A6
	IconNoMoney          Icon = 0xE7A7
	IconNoEuro           Icon = 0xE7A8
	IconNoYen            Icon = 0xE7A9
	IconGlyph229         Icon = 0xE7AA
	IconEqualsCircle     Icon = 0xE7AB
	IconNoC              Icon = 0xE7AC
	IconZeroCircle       Icon = 0xE7AD
	IconCopyCircle       Icon = 0xE7AE
	IconBlocksCircle     Icon = 0xE7AF
	IconGithub           Icon = 0xF300
	IconGithubCircle     Icon = 0xF301
	IconFacebook         Icon = 0xF30C
	IconFacebook2        Icon = 0xF30D
	IconFacebook3        Icon = 0xF30E
	IconLinkedin         Icon = 0xF318
	IconLinkedin2        Icon = 0xF319
	IconGlyph254         Icon = 0xF31B
	IconGlyph255         Icon = 0xF31C
	IconGlyph256         Icon = 0xF31E
	IconGlyph257         Icon = 0xF31F
	IconGlyph258         Icon = 0xF321
	IconGlyph259         Icon = 0xF322
	IconGlyph260         Icon = 0xF324
	IconGlyph261         Icon = 0xF325
	IconSpotify2         Icon = 0xF327
	IconSpotify          Icon = 0xF328
	IconInstagram        Icon = 0xF32D
	IconDropbox          Icon = 0xF330
	IconSkype2           Icon = 0xF339
	IconSkype            Icon = 0xF33A
	IconPaypal           Icon = 0xF342
	IconPicasa           Icon = 0xF345
	IconSoundcloud       Icon = 0xF348
	IconMyspace          Icon = 0xF34B
	IconBehance          Icon = 0xF34E
	IconBootstrap        Icon = 0xF354
	IconStorybook        Icon = 0xF357
	IconFlag1            Icon = 0xF601
	IconDropsDisabled    Icon = 0xF603
	IconImageList        Icon = 0x1F304
	IconEarth            Icon = 0x1F30E
	IconLeaf             Icon = 0x1F342
	IconMortarboard      Icon = 0x1F393
	IconMicrophone       Icon = 0x1F3A4
	IconTicket           Icon = 0x1F3AB
	IconVideo            Icon = 0x1F3AC
	IconAim              Icon = 0x1F3AF
	IconFileMusic        Icon = 0x1F3B5
	IconTrophy           Icon = 0x1F3C6
	IconLike             Icon = 0x1F44D
	IconDislike          Icon = 0x1F44E
	IconShoppingBag      Icon = 0x1F45C
	IconPerson           Icon = 0x1F464
	IconPeople           Icon = 0x1F465
	IconLightbulb        Icon = 0x1F4A1
	IconFatal            Icon = 0x1F4A5
	IconWaterdrops       Icon = 0x1F4A6
	IconWaterdrop        Icon = 0x1F4A7
	IconCreditcard       Icon = 0x1F4B3
	IconMonitor          Icon = 0x1F4BB
	IconSuitcase         Icon = 0x1F4BC
	IconSave             Icon = 0x1F4BE
	IconCd               Icon = 0x1F4BF
	IconFolderOpen       Icon = 0x1F4C1
	IconReceipt          Icon = 0x1F4C4
	IconCalendar         Icon = 0x1F4C5
	IconLineChart        Icon = 0x1F4C8
	IconBarChart         Icon = 0x1F4CA
	IconClipboard        Icon = 0x1F4CB
	IconPaperclip        Icon = 0x1F4CE
	IconBookmarkList     Icon = 0x1F4D1
	IconBook             Icon = 0x1F4D5
	IconBookOpen         Icon = 0x1F4D6
	IconTelephone        Icon = 0x1F4DE
	IconMegaphone        Icon = 0x1F4E3
	IconUpload           Icon = 0x1F4E4
	IconDownload         Icon = 0x1F4E5
	IconBox              Icon = 0x1F4E6
	IconArticle          Icon = 0x1F4F0
	IconPhone            Icon = 0x1F4F1
	IconWifi             Icon = 0x1F4F6
	IconCamera           Icon = 0x1F4F7
	IconRandom           Icon = 0x1F500
	IconLoop             Icon = 0x1F501
	IconRefresh          Icon = 0x1F504
	IconBrightnessDown   Icon = 0x1F505
	IconBrightnessUp     Icon = 0x1F506
	IconLightOff         Icon = 0x1F507
	IconLight            Icon = 0x1F50A
	IconBattery          Icon = 0x1F50B
	IconSearch           Icon = 0x1F50D
	IconKey              Icon = 0x1F511
	IconLockClosed       Icon = 0x1F512
	IconLockOpen         Icon = 0x1F513
	IconNotification     Icon = 0x1F514
	IconBookmark         Icon = 0x1F516
	IconLink             Icon = 0x1F517
	IconBack             Icon = 0x1F519
	IconFlashlight       Icon = 0x1F526
	IconChartUp          Icon = 0x1F53E
	IconClock5           Icon = 0x1F554
	IconRocket           Icon = 0x1F680
	IconBlocked          Icon = 0x1F6AB
)
